// Package render turns a layered graph into something people can look at.
//
// The solver graph carries no coordinates or titles. Layout computes them on
// the side, keyed by node id: the x axis is the layer, the y axis the
// cumulative weight. DOT exports the graph in Graphviz format through
// github.com/dominikbraun/graph, optionally highlighting a solution path.
//
// Positions are emitted as neato "pos" attributes, so
//
//	neato -n -Tsvg graph.dot > graph.svg
//
// reproduces the grid. Graphs above the node limit (WithMaxNodes) are refused.
package render
