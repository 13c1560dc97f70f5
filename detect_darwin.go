package displayq

// Detect returns the robotgo backend; macOS has a single display stack.
func Detect() (Backend, error) {
	return newRobotBackend(), nil
}
