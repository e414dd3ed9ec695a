package domain

import "strings"

type ImageKind string

const (
	ImageNone      ImageKind = ""
	ImageLocalFile ImageKind = "local"
	ImageRemoteURL ImageKind = "remote"
)

// Image is a promoter picture, either a file in the local upload directory
// or an externally hosted URL. Key identifies the file on the hosting service
// and is empty for URLs typed in by hand.
type Image struct {
	Kind ImageKind `json:"kind"`
	Ref  string    `json:"ref"`
	Key  string    `json:"-"`
}

func LocalImage(filename string) Image {
	return Image{Kind: ImageLocalFile, Ref: filename}
}

func RemoteImage(url, key string) Image {
	return Image{Kind: ImageRemoteURL, Ref: url, Key: key}
}

func (i Image) IsZero() bool {
	return i.Kind == ImageNone || i.Ref == ""
}

// Src returns the URL a page should use to display the image. uploadsPath is
// the public path the local upload directory is served under.
func (i Image) Src(uploadsPath string) string {
	switch i.Kind {
	case ImageLocalFile:
		return strings.TrimRight(uploadsPath, "/") + "/" + i.Ref
	case ImageRemoteURL:
		return i.Ref
	default:
		return ""
	}
}

// ImageUpload is a file received from the admin form, not yet stored.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
