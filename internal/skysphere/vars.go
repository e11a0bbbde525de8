package skysphere

var (
	Debug    = false // set to true for verbose debug output
	Progress = true  // set to false to silence the [PROGRESS] row prints
)
