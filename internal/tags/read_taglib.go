package tags

import (
	"path/filepath"

	"go.senan.xyz/taglib"
)

// readWithTaglib reads FLAC, M4A and Ogg metadata using TagLib
// as fallback when dhowden/tag fails.
func readWithTaglib(path string) (*Tag, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(rawTags)

	title := tags.get(taglib.Title)
	if title == "" {
		title = filepath.Base(path)
	}

	return &Tag{Title: title, Artist: tags.get(taglib.Artist)}, nil
}
