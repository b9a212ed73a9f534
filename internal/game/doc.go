// Package game simulates the pile game: every move takes one coin from each
// pile and stacks the collected coins as a new pile. Play advances a
// position until it repeats and reports how many moves that took (the
// score) and the length of the cycle it fell into (the loop).
package game
