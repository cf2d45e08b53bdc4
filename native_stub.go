//go:build !(darwin || linux)

package daxa

// DefaultLibraryName is the file name Open loads.
func DefaultLibraryName() string {
	return "daxa.dll"
}

// Open is not supported on this platform.
func Open() (Library, error) {
	return nil, ErrNativeUnsupported
}

// Load is not supported on this platform.
func Load(path string) (Library, error) {
	return nil, ErrNativeUnsupported
}
