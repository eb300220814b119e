// Package execution is the root of the query execution engine.
//
// The engine uses the iterator (volcano) model: every operator implements
// the [volcano/pkg/iterator.Operator] contract with Open / Next / Output /
// Close. Operators are composed into a tree; calling Next on the root pulls
// one row at a time through the entire pipeline, and only the operators that
// must (sort, aggregation, join build side, set operations) buffer rows.
//
// # Sub-packages
//
//   - [volcano/pkg/execution/query]       – Scan leaf, Print sink, and the
//     pipelined Projection / Select operators plus the materializing Sort.
//   - [volcano/pkg/execution/aggregation] – Hash aggregation with grouping
//     and MIN / MAX / SUM / COUNT.
//   - [volcano/pkg/execution/join]        – Hash equi-join (right build,
//     left probe).
//   - [volcano/pkg/execution/setops]      – UNION, INTERSECT, and EXCEPT in
//     distinct and ALL forms over whole-tuple multisets.
//
// # Execution flow
//
// An external planner builds the operator tree and owns it. The driver opens
// the root, calls Next until it returns false, reads each row through
// Output, and closes the tree. Output views borrow operator-internal
// storage and are invalidated by the next advance.
package execution
