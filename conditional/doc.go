// Package conditional layers a variables/propositions partition over
// metagraph.Metagraph: a ConditionalMetagraph's generating set splits into
// "ordinary" variables and "proposition" elements that gate which edges
// apply under a given interpretation.
//
// Features:
//   - NewConditionalMetagraph partitions a generating set and rejects
//     overlapping variables/propositions.
//   - AddEdgesFrom additionally rejects an edge whose outvertex mixes a
//     proposition with any other element.
//   - GetContext specializes the metagraph for a fixed assignment of
//     propositions to true/false.
//   - IsConnected, IsFullyConnected, IsRedundantlyConnected, and
//     IsNonRedundant quantify reachability across every interpretation of
//     a set of propositional expressions.
//
// Errors: core.Error values carrying core.InvalidArgument,
// core.RangeViolation (an expression token or interpretation proposition
// outside the propositions set), and core.Inconsistency, matching
// metagraph's own error taxonomy.
package conditional
