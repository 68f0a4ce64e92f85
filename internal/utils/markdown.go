package utils

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

var imageRefPattern = regexp.MustCompile(`!\[.*?\]\(((?:https?://)?(?:[^/)]+/)*([^/)]+\.[a-zA-Z0-9]+))\)`)

// FindImagesInContent extracts image filenames from markdown image
// references, both bare filenames and full URLs.
func FindImagesInContent(content string) []string {
	if content == "" {
		return nil
	}

	matches := imageRefPattern.FindAllStringSubmatch(content, -1)
	filenames := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) > 2 && m[2] != "" {
			filenames = append(filenames, m[2])
		} else if len(m) > 1 {
			filenames = append(filenames, m[1])
		}
	}
	return filenames
}

// ExtractFilenameFromPath returns the last path segment of a URL or path.
func ExtractFilenameFromPath(pathOrURL string) string {
	if pathOrURL == "" {
		return ""
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		u, err := url.Parse(pathOrURL)
		if err != nil {
			return ""
		}
		return path.Base(u.Path)
	}

	if strings.Contains(pathOrURL, "/") {
		return path.Base(pathOrURL)
	}

	return pathOrURL
}

// AppendImageToContent adds one markdown image reference at the end.
func AppendImageToContent(content string, imageURL string) string {
	return content + fmt.Sprintf("\n\n![Image](%s)\n", imageURL)
}

// InsertImageIntoContent inserts a markdown image reference at a cursor
// offset. Offsets past the end append.
func InsertImageIntoContent(content string, imageURL string, index int) string {
	markdown := fmt.Sprintf("\n\n![Image](%s)\n\n", imageURL)
	if index < 0 {
		index = 0
	}
	if index >= len(content) {
		return content + markdown
	}
	return content[:index] + markdown + content[index:]
}

// ReplaceImageInContent swaps one image URL for another, keeping alt text.
func ReplaceImageInContent(content string, oldURL string, newURL string) string {
	pattern := regexp.MustCompile(`(!\[.*?\])\(` + regexp.QuoteMeta(oldURL) + `\)`)
	return pattern.ReplaceAllString(content, "${1}("+newURL+")")
}

// RemoveImageFromContent strips a markdown image reference and trailing
// whitespace.
func RemoveImageFromContent(content string, imageURL string) string {
	pattern := regexp.MustCompile(`!\[.*?\]\(` + regexp.QuoteMeta(imageURL) + `\)(\s*\n*)?`)
	return pattern.ReplaceAllString(content, "")
}

// FindUnusedImages returns filenames referenced in oldContent but no
// longer referenced in newContent.
func FindUnusedImages(oldContent string, newContent string) []string {
	newImages := map[string]bool{}
	for _, filename := range FindImagesInContent(newContent) {
		newImages[filename] = true
	}

	var unused []string
	for _, filename := range FindImagesInContent(oldContent) {
		if !newImages[filename] {
			unused = append(unused, filename)
		}
	}
	return unused
}

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
	"bmp":  true,
	"svg":  true,
	"tiff": true,
}

// IsImageFile accepts either an image content type or a known extension.
func IsImageFile(filename string, contentType string) bool {
	if filename == "" {
		return false
	}

	if strings.HasPrefix(contentType, "image/") {
		return true
	}

	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		return imageExtensions[strings.ToLower(filename[idx+1:])]
	}

	return false
}
