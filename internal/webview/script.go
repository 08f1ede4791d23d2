package webview

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"mwtrack/internal/domain"
)

// StyleID is the id of the style element the script maintains.
const StyleID = "mwt-injected-styles"

var cssTemplate = template.Must(template.New("css").Parse(`
:root {
  --mwt-primary: {{.Primary}};
  --mwt-primary-2: {{.Primary}};
  --mwt-deep: {{.Text}};
  --mwt-border: {{.Border}};
  --mwt-bg: {{.Card}};
  --mwt-text-muted: {{.Subtext}};
  --mwt-shadow: none;
  --mwt-danger: #ef4444;
}
body {
  background-color: {{.Background}} !important;
  color: {{.Text}} !important;
}
.rastreo-container {
  background: {{.Background}} !important;
  padding: 0 !important;
}
.rastreo-inner {
  background-color: {{.Background}} !important;
  color: {{.Text}} !important;
  box-shadow: none !important;
  border: 1px solid {{.Border}} !important;
  border-radius: 0 !important;
}
.order-summary {
  background: transparent !important;
}
.btn.btn-home,
.btn-back,
.btn-dashboard {
  display: none !important;
}
`))

var scriptTemplate = template.Must(template.New("script").Parse(`(function() {
  try {
    var style = document.getElementById({{.StyleID}});
    if (!style) {
      style = document.createElement('style');
      style.id = {{.StyleID}};
      document.head.appendChild(style);
    }
    style.innerHTML = {{.CSS}};

    function removeChrome() {
      ['sp-header', 'sp-footer'].forEach(function(id) {
        document.querySelectorAll('#' + id).forEach(function(el) {
          el.style.setProperty('display', 'none', 'important');
          el.style.setProperty('visibility', 'hidden', 'important');
          el.style.setProperty('height', '0', 'important');
          el.style.setProperty('opacity', '0', 'important');
        });
      });
    }
    removeChrome();
    setTimeout(removeChrome, 100);
    setTimeout(removeChrome, 500);
    setInterval(removeChrome, 2000);
  } catch (e) {
    console.error('mwtrack style injection failed', e);
  }
})();
true;
`))

// CSS renders the stylesheet for palette.
func CSS(palette domain.Palette) (string, error) {
	var b strings.Builder
	if err := cssTemplate.Execute(&b, palette); err != nil {
		return "", fmt.Errorf("render css: %w", err)
	}
	return b.String(), nil
}

// InjectedScript returns the script that restyles an embedded page with
// palette and hides the site's own header, footer and navigation buttons.
// Running it twice updates the same style element.
func InjectedScript(palette domain.Palette) (string, error) {
	css, err := CSS(palette)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	err = scriptTemplate.Execute(&b, struct {
		StyleID string
		CSS     string
	}{
		StyleID: strconv.Quote(StyleID),
		CSS:     strconv.Quote(css),
	})
	if err != nil {
		return "", fmt.Errorf("render script: %w", err)
	}
	return b.String(), nil
}

// RedirectScript navigates an embedded page to target.
func RedirectScript(target string) string {
	return fmt.Sprintf("window.location.href = %s; true;", strconv.Quote(target))
}
