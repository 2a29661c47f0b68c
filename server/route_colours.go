package server

import "fmt"

const resetColour = "\033[0m"

// Method colours for the DEV route listing.
var methodColours = map[string]string{
	"GET":     "\033[32m",
	"POST":    "\033[34m",
	"DELETE":  "\033[33m",
	"OPTIONS": "\033[90m",
}

func colourMethod(method string) string {
	padded := fmt.Sprintf("%-7s", method)
	if colour, ok := methodColours[method]; ok {
		return colour + padded + resetColour
	}
	return padded
}
