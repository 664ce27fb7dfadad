// Package rel implements relational query operators over ordered, in-memory
// sequences of tuples, in the spirit of the relational algebra defined by
// E. F. Codd.
//
// Basics
//
// A relation is a finite sequence of tuples of a single type.  Tuples are
// usually structs with no unexported or anonymous fields, and the fields of
// the struct are the attributes of the tuple it represents.  Unlike the
// relations of the algebra, the relations here keep the order of their
// sources and may hold duplicates, so that queries can be ordered and
// aggregates see every row.
//
// Literal relations are created from a slice with New.  Relational
// expressions are created from other relations by:
//
// Restrict, which removes tuples that do not satisfy a predicate.
//
// Map and Project, which transform every tuple, Project by copying a subset
// of the attributes into a new struct type.
//
// OrderBy, which sorts the tuples by an attribute or a comparison.
//
// Join, NaturalJoin, CrossJoin and SemiJoin, which combine two relations.
//
// GroupBy, which partitions a relation by a key, and the aggregates Count,
// Sum, Average, Min and Max.
//
// Flatten, which expands each tuple into zero or more tuples.
//
// RestrictCorrelated, which restricts a relation with a subquery evaluated
// once per tuple.
//
// Predicates are built from attributes in the subpackage att, for example
// att.Attribute("Job").EQ("SALESMAN"), or from an ordinary func with att.Func.
//
// Every relation can be read any number of times, and reading it never
// changes its sources.  Expressions are checked when they are constructed:
// an expression that refers to attributes its tuples do not have, or reads
// them as the wrong type, carries an error, available from Err, and
// produces no tuples.  Expressions of relations with errors carry the same
// error.
package rel
