package service

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
)

const (
	translateBaseURL = "https://translate.google.com/"
	mapsSearchURL    = "https://www.google.com/maps/search/"
)

// TranslateMode is the direction of a translation shortcut
type TranslateMode string

const (
	TranslateJapaneseToChinese TranslateMode = "jp-tw"
	TranslateChineseToJapanese TranslateMode = "tw-jp"
)

var translateLanguages = map[TranslateMode][2]string{
	TranslateJapaneseToChinese: {"ja", "zh-TW"},
	TranslateChineseToJapanese: {"zh-TW", "ja"},
}

// LinkService builds outbound links into translation and map services
type LinkService struct{}

// NewLinkService creates a new LinkService
func NewLinkService() *LinkService {
	return &LinkService{}
}

// TranslateURL builds a translation link for text. Blank text yields an
// empty link.
func (s *LinkService) TranslateURL(mode TranslateMode, text string) (string, error) {
	langs, ok := translateLanguages[mode]
	if !ok {
		return "", domain.ErrUnknownTranslateMode
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(translateBaseURL)
	b.WriteString("?sl=")
	b.WriteString(langs[0])
	b.WriteString("&tl=")
	b.WriteString(langs[1])
	b.WriteString("&text=")
	b.WriteString(escapeComponent(text))
	b.WriteString("&op=translate")
	return b.String(), nil
}

// escapeComponent percent-encodes s with spaces as %20
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// MapSearchURL links to a map search for a free-text query
func (s *LinkService) MapSearchURL(query string) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", query)
	return mapsSearchURL + "?" + q.Encode()
}

// MapCoordinatesURL links to a map pin at c
func (s *LinkService) MapCoordinatesURL(c domain.Coordinates) string {
	return s.MapSearchURL(strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64))
}
