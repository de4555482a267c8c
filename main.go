package main

import "github.com/Ertugrulkurtul/Macromeal-Planner/cmd/macromeal"

func main() {
	macromeal.Execute()
}
