package fetch

import (
	"net/url"
	"regexp"
	"strings"
)

// Platform is a known document host.
type Platform string

const (
	PlatformGoogleDocs  Platform = "google_docs"
	PlatformGoogleDrive Platform = "google_drive"
	PlatformDropbox     Platform = "dropbox"
	PlatformGitHub      Platform = "github"
	PlatformNotion      Platform = "notion"
	PlatformUnknown     Platform = "unknown"
)

var (
	googleDocPath   = regexp.MustCompile(`^/document/d/([A-Za-z0-9_-]+)`)
	googleDrivePath = regexp.MustCompile(`^/file/d/([A-Za-z0-9_-]+)`)
	githubBlobPath  = regexp.MustCompile(`^/([^/]+)/([^/]+)/blob/(.+)$`)
)

// DetectPlatform identifies the document host of a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case host == "docs.google.com" && googleDocPath.MatchString(parsed.Path):
		return PlatformGoogleDocs
	case host == "drive.google.com":
		return PlatformGoogleDrive
	case host == "dropbox.com" || strings.HasSuffix(host, ".dropbox.com"):
		return PlatformDropbox
	case host == "github.com" || host == "raw.githubusercontent.com" || strings.HasSuffix(host, ".github.io"):
		return PlatformGitHub
	case strings.HasSuffix(host, "notion.site") || strings.HasSuffix(host, "notion.so"):
		return PlatformNotion
	}
	return PlatformUnknown
}

// DirectURL rewrites sharing links into URLs that serve the document itself:
// Google Docs are exported as DOCX, Drive and Dropbox links are switched to
// download mode, and GitHub blob pages point at the raw file. Other URLs are
// returned unchanged.
func DirectURL(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return urlStr
	}

	switch DetectPlatform(urlStr) {
	case PlatformGoogleDocs:
		id := googleDocPath.FindStringSubmatch(parsed.Path)[1]
		return "https://docs.google.com/document/d/" + id + "/export?format=docx"
	case PlatformGoogleDrive:
		if m := googleDrivePath.FindStringSubmatch(parsed.Path); m != nil {
			return "https://drive.google.com/uc?export=download&id=" + m[1]
		}
	case PlatformDropbox:
		q := parsed.Query()
		q.Set("dl", "1")
		parsed.RawQuery = q.Encode()
		return parsed.String()
	case PlatformGitHub:
		if strings.EqualFold(parsed.Host, "github.com") {
			if m := githubBlobPath.FindStringSubmatch(parsed.Path); m != nil {
				return "https://raw.githubusercontent.com/" + m[1] + "/" + m[2] + "/" + m[3]
			}
		}
	}
	return urlStr
}

// PlatformContentSelectors returns content selectors for pages on platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformNotion:
		return []string{".notion-page-content", "main"}
	case PlatformGitHub:
		return []string{"article.markdown-body", ".markdown-body", "main"}
	default:
		return DefaultTextSelectors()
	}
}

// PlatformNoiseSelectors returns elements to strip from pages on platform.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		".social-share",
		".share-buttons",
		".gdpr-notice",
		"[aria-hidden='true']",
	}
	switch platform {
	case PlatformNotion:
		return append(common, ".notion-topbar", ".notion-page-controls")
	case PlatformGitHub:
		return append(common, ".js-header-wrapper", ".file-navigation")
	default:
		return common
	}
}
