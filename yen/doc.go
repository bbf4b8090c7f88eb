// Package yen implements Yen's algorithm for the k loopless shortest
// paths between a start node and a goal predicate, built as a driver on
// top of dijkstra: it repeatedly reruns Dijkstra from spur points along
// already-found paths with a temporarily restricted successor function
// that forbids the edges and nodes those paths already used.
//
// Grounded on the reference implementation's yen() (dijkstra_internal
// plus a spur/root-path candidate heap), adapted to return at most k
// paths (not k+1) and to source candidate ties from insertion order
// rather than a node ordering, since this module's search.Node
// constraint carries no ordering requirement.
package yen
