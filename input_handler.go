package linetui

import (
	"log/slog"
	"regexp"

	"github.com/charmbracelet/x/ansi"

	"github.com/yeeaiclub/linetui/keys"
)

// kittyQueryResponse is the terminal's answer to ESC [ ? u: the currently
// enabled progressive enhancement flags.
var kittyQueryResponse = regexp.MustCompile(`^\x1b\[\?(\d+)u$`)

// inputFilter sits between the decoded input stream and the components. It
// consumes terminal responses and drops events the target did not ask for.
type inputFilter struct {
	write  func(string) error
	logger *slog.Logger
}

// Filter reports whether seq should be delivered to target.
func (f *inputFilter) Filter(seq string, target Component) bool {
	if kittyQueryResponse.MatchString(seq) {
		if !keys.KittyProtocolActive() && f.push() {
			keys.SetKittyProtocolActive(true)
		}
		return false
	}
	if keys.IsKeyRelease(seq) {
		r, ok := target.(KeyReleaseReceiver)
		return ok && r.WantsKeyRelease()
	}
	return true
}

// push enables disambiguated key reporting. It reports whether the terminal
// accepted the request; on failure the legacy decoding stays in effect.
func (f *inputFilter) push() bool {
	if f.write == nil {
		return true
	}
	if err := f.write(ansi.PushKittyKeyboard(ansi.KittyDisambiguateEscapeCodes)); err != nil {
		f.logger.Warn("kitty keyboard push failed", "error", err)
		return false
	}
	return true
}
