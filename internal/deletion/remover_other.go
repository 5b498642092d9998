//go:build !windows && !unix

package deletion

// Platform returns NoElevation; this platform has no supported elevation path
func Platform() PrivilegedRemover { return NoElevation{} }

func CanElevate() bool { return false }

func IsElevated() bool { return false }
