package loaders

type ResourceType int

const (
	ResourceTypeNone ResourceType = iota
	ResourceTypeImage
	ResourceTypeShader
	ResourceTypeBitmapFont
	ResourceTypeSystemFont
)

func (rt ResourceType) String() string {
	switch rt {
	case ResourceTypeImage:
		return "image"
	case ResourceTypeShader:
		return "shader"
	case ResourceTypeBitmapFont:
		return "bitmap-font"
	case ResourceTypeSystemFont:
		return "system-font"
	default:
		return "none"
	}
}

// Resource is the output of a loader. Data holds the decoded payload:
// *image.RGBA for images, string for shader sources and *FontData for fonts.
type Resource struct {
	Name     string
	FullPath string
	Type     ResourceType
	DataSize uint64
	Data     interface{}
}
