package keys

// symbolKeys are the printable ASCII symbols that can be bound as keys.
var symbolKeys = map[rune]bool{
	'`': true, '-': true, '=': true, '[': true, ']': true,
	'\\': true, ';': true, '\'': true, ',': true, '.': true,
	'/': true, '!': true, '@': true, '#': true, '$': true,
	'%': true, '^': true, '&': true, '*': true, '(': true,
	')': true, '_': true, '+': true, '|': true, '~': true,
	'{': true, '}': true, ':': true, '<': true, '>': true,
	'?': true,
}

// legacySequences lists the unmodified sequences of named keys.
var legacySequences = map[string][]string{
	"up":       {"\x1b[A", "\x1bOA"},
	"down":     {"\x1b[B", "\x1bOB"},
	"right":    {"\x1b[C", "\x1bOC"},
	"left":     {"\x1b[D", "\x1bOD"},
	"home":     {"\x1b[H", "\x1bOH", "\x1b[1~", "\x1b[7~"},
	"end":      {"\x1b[F", "\x1bOF", "\x1b[4~", "\x1b[8~"},
	"insert":   {"\x1b[2~"},
	"delete":   {"\x1b[3~"},
	"pageup":   {"\x1b[5~"},
	"pagedown": {"\x1b[6~"},
	"clear":    {"\x1b[E", "\x1bOE"},
	"f1":       {"\x1bOP", "\x1b[11~"},
	"f2":       {"\x1bOQ", "\x1b[12~"},
	"f3":       {"\x1bOR", "\x1b[13~"},
	"f4":       {"\x1bOS", "\x1b[14~"},
	"f5":       {"\x1b[15~"},
	"f6":       {"\x1b[17~"},
	"f7":       {"\x1b[18~"},
	"f8":       {"\x1b[19~"},
	"f9":       {"\x1b[20~"},
	"f10":      {"\x1b[21~"},
	"f11":      {"\x1b[23~"},
	"f12":      {"\x1b[24~"},
}

// rxvt-style shifted and ctrl variants.
var legacyShiftSequences = map[string][]string{
	"up":       {"\x1b[a"},
	"down":     {"\x1b[b"},
	"right":    {"\x1b[c"},
	"left":     {"\x1b[d"},
	"clear":    {"\x1b[e"},
	"insert":   {"\x1b[2$"},
	"delete":   {"\x1b[3$"},
	"pageup":   {"\x1b[5$"},
	"pagedown": {"\x1b[6$"},
	"home":     {"\x1b[7$"},
	"end":      {"\x1b[8$"},
}

var legacyCtrlSequences = map[string][]string{
	"up":       {"\x1bOa"},
	"down":     {"\x1bOb"},
	"right":    {"\x1bOc"},
	"left":     {"\x1bOd"},
	"clear":    {"\x1bOe"},
	"insert":   {"\x1b[2^"},
	"delete":   {"\x1b[3^"},
	"pageup":   {"\x1b[5^"},
	"pagedown": {"\x1b[6^"},
	"home":     {"\x1b[7^"},
	"end":      {"\x1b[8^"},
}

// legacyAltSequences are sent by terminals that map alt+arrow to emacs-style
// word motion.
var legacyAltSequences = map[string][]string{
	"up":    {"\x1bp"},
	"down":  {"\x1bn"},
	"left":  {"\x1bb", "\x1b[1;3D"},
	"right": {"\x1bf", "\x1b[1;3C"},
}

// legacyKeyIDs maps sequences to key identifiers for ParseKey. It is built
// from the tables above.
var legacyKeyIDs = buildLegacyKeyIDs()

func buildLegacyKeyIDs() map[string]string {
	ids := make(map[string]string)
	add := func(prefix string, table map[string][]string) {
		for key, seqs := range table {
			for _, seq := range seqs {
				if _, ok := ids[seq]; !ok {
					ids[seq] = prefix + key
				}
			}
		}
	}
	add("", legacySequences)
	add("shift+", legacyShiftSequences)
	add("ctrl+", legacyCtrlSequences)
	add("alt+", legacyAltSequences)
	return ids
}

func matchesAny(data string, seqs []string) bool {
	for _, seq := range seqs {
		if data == seq {
			return true
		}
	}
	return false
}

// matchesLegacyModified checks the shift and ctrl variant tables.
func matchesLegacyModified(data, key string, modifier int) bool {
	switch modifier {
	case ModifierShift:
		return matchesAny(data, legacyShiftSequences[key])
	case ModifierCtrl:
		return matchesAny(data, legacyCtrlSequences[key])
	case ModifierAlt:
		return matchesAny(data, legacyAltSequences[key])
	}
	return false
}

// rawCtrlChar returns the C0 control character sent for ctrl+key, or "".
func rawCtrlChar(key string) string {
	if len(key) != 1 {
		return ""
	}
	c := key[0]
	switch {
	case c >= 'a' && c <= 'z', c == '[', c == '\\', c == ']', c == '_':
		return string(rune(c & 0x1f))
	case c == '-':
		return "\x1f"
	}
	return ""
}
