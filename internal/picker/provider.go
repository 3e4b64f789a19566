package picker

import "errors"

var errNilCapability = errors.New("provider requires camera, gallery and documents capabilities")

// Provider bundles the three acquisition capabilities into one explicit
// value. It is constructed once at startup and passed to consumers; no
// global state is involved, so tests and applications can freely mix
// real, filesystem-backed, and interactive implementations.
type Provider struct {
	Camera    Camera
	Gallery   Gallery
	Documents Documents
}

// NewProvider constructs a [Provider] from the given capability
// implementations. All three are required.
func NewProvider(camera Camera, gallery Gallery, documents Documents) (*Provider, error) {
	if camera == nil || gallery == nil || documents == nil {
		return nil, errNilCapability
	}

	return &Provider{
		Camera:    camera,
		Gallery:   gallery,
		Documents: documents,
	}, nil
}
