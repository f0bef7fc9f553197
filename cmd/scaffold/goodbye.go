// ABOUTME: Farewell messages printed on signal or end-of-input abort
// ABOUTME: Picked uniformly; plain math/rand is fine for cosmetics

package main

import "math/rand/v2"

var goodbyes = []string{
	"Goodbye!",
	"See you next time!",
	"Exiting. Have a great day!",
	"Bye for now!",
	"Take care!",
	"Scaffold signing off!",
	"👋 Goodbye!",
	"Thanks for using Scaffold!",
}

func goodbye() string {
	return goodbyes[rand.IntN(len(goodbyes))]
}
