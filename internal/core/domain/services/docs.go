// Package services contains stateless domain services of the dispatch engine.
//
// RoutePlanner finds shortest paths on the city grid with A* search, and
// BotDispatcher picks the least loaded bot for a new order. Both operate
// purely on domain aggregates and hold no state of their own, so a single
// instance of each can be shared freely across goroutines.
package services
