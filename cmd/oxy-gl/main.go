package main

import (
	"log"
	"runtime"
)

func init() {
	// GLFW and the OpenGL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("oxy-gl: %v", err)
	}
}
