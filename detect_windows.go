package displayq

// Detect returns the robotgo backend; Windows has a single display stack.
func Detect() (Backend, error) {
	return newRobotBackend(), nil
}
