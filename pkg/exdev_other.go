//go:build !unix

package dupmirror

func isEXDEV(err error) bool {
	return false
}
