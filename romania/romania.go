// Package romania provides the Romania road map: driving distances between
// cities and the straight-line distance from each city to Bucharest.
//
// Every direction of every road is listed explicitly, so the map is built as
// a directed core.Graph whose per-city neighbor order is the listing order.
// Giurgiu is only listed as a destination of Bucharest: it is a vertex with
// no outgoing roads.
package romania

import "github.com/katalvlaran/searchbench/core"

// Goal is the city the straight-line estimates point at.
const Goal = "Bucharest"

// road is one listed connection out of a city.
type road struct {
	To       string
	Distance float64
}

// roads lists, per city and in order, the outgoing roads of the map.
// Cities appear in the order vertices are first created.
var roads = []struct {
	city  string
	roads []road
}{
	{"Arad", []road{{"Zerind", 75}, {"Timisoara", 118}, {"Sibiu", 140}}},
	{"Zerind", []road{{"Arad", 75}, {"Oradea", 71}}},
	{"Oradea", []road{{"Zerind", 71}, {"Sibiu", 151}}},
	{"Sibiu", []road{{"Arad", 140}, {"Oradea", 151}, {"Fagaras", 99}, {"Rimnicu Vilcea", 80}}},
	{"Timisoara", []road{{"Arad", 118}, {"Lugoj", 111}}},
	{"Lugoj", []road{{"Timisoara", 111}, {"Mehadia", 70}}},
	{"Mehadia", []road{{"Lugoj", 70}, {"Drobeta", 75}}},
	{"Drobeta", []road{{"Mehadia", 75}, {"Craiova", 120}}},
	{"Craiova", []road{{"Drobeta", 120}, {"Rimnicu Vilcea", 146}, {"Pitesti", 138}}},
	{"Rimnicu Vilcea", []road{{"Sibiu", 80}, {"Craiova", 146}, {"Pitesti", 97}}},
	{"Fagaras", []road{{"Sibiu", 99}, {"Bucharest", 211}}},
	{"Pitesti", []road{{"Rimnicu Vilcea", 97}, {"Craiova", 138}, {"Bucharest", 101}}},
	{"Bucharest", []road{{"Fagaras", 211}, {"Pitesti", 101}, {"Giurgiu", 90}}},
}

// straightLine holds the straight-line distance from each city to Bucharest.
var straightLine = map[string]float64{
	"Arad": 366, "Zerind": 374, "Oradea": 380, "Sibiu": 253, "Timisoara": 329,
	"Lugoj": 244, "Mehadia": 241, "Drobeta": 242, "Craiova": 160, "Rimnicu Vilcea": 193,
	"Fagaras": 176, "Pitesti": 100, "Bucharest": 0, "Giurgiu": 77,
}

// Graph builds a fresh directed graph of the road map. Callers may modify it
// freely; every call starts from the same listing.
func Graph() *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for _, c := range roads {
		// listed cities exist even before their first road is added
		_ = g.AddVertex(c.city)
		for _, r := range c.roads {
			// static data: ids are non-empty and distances are positive
			_ = g.AddEdge(c.city, r.To, r.Distance)
		}
	}

	return g
}

// Heuristic builds the straight-line heuristic towards Goal.
func Heuristic() *core.Heuristic {
	h, err := core.NewHeuristic(Goal, straightLine)
	if err != nil {
		panic("romania: invalid straight-line table: " + err.Error())
	}

	return h
}
