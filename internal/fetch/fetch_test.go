package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Jane Doe</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML(), "<h1>Jane Doe</h1>")
	assert.Equal(t, "text/html", result.ContentType)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_UnsupportedScheme(t *testing.T) {
	_, err := URL(context.Background(), "ftp://example.com/resume.pdf", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scheme")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestURL_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.MaxBytes = 16
	_, err := URL(context.Background(), server.URL, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 16 bytes")
}

func TestURL_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.Header.Get("Accept-Language"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.Headers = map[string]string{"Accept-Language": "en"}
	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
}

func TestExtractMainText_BlockElementsBecomeLines(t *testing.T) {
	html := `
	<html>
		<head><title>Resume</title></head>
		<body>
			<nav>Home | Blog</nav>
			<main>
				<h1>Jane Doe</h1>
				<p>jane@example.com<br>(555) 123-4567</p>
				<h2>SKILLS</h2>
				<ul><li>Go</li><li>Python</li></ul>
			</main>
			<footer>Copyright</footer>
			<script>var tracking = true;</script>
		</body>
	</html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com\n(555) 123-4567\nSKILLS\n- Go\n- Python", text)
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><div>Jane Doe</div><div>EXPERIENCE</div></body></html>`

	text, err := ExtractMainText(html, []string{".does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEXPERIENCE", text)
}

func TestExtractMainText_RemovesNoise(t *testing.T) {
	html := `<html><body><main><p>Jane Doe</p><form>Contact me</form></main></body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors(), PlatformNoiseSelectors(PlatformUnknown)...)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", text)
}

func TestCleanWhitespace(t *testing.T) {
	assert.Equal(t, "a b\nc", cleanWhitespace("  a   b \n\n\t\n c  "))
}
