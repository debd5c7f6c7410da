package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// prettyHandler renders each record as a single colorized line (time, level,
// message, then every attribute as key=value), for interactive terminals.
type prettyHandler struct {
	mu     *sync.Mutex
	out    io.Writer
	opts   *slog.HandlerOptions
	color  bool
	attrs  []slog.Attr
	groups []string
}

func newPrettyHandler(out io.Writer, opts *slog.HandlerOptions, color bool) *prettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &prettyHandler{mu: &sync.Mutex{}, out: out, opts: opts, color: color}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := h.opts.Level
	if min == nil {
		return level >= slog.LevelInfo
	}
	return level >= min.Level()
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := map[string]any{}
	for _, a := range h.attrs {
		addAttr(fields, h.groups, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(fields, h.groups, a)
		return true
	})

	var b bytes.Buffer
	b.WriteString(applyDim(h.color, r.Time.Format(time.TimeOnly)))
	b.WriteByte(' ')
	b.WriteString(levelTag(h.color, r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	if s := renderSummary(h.color, fields); s != "" {
		b.WriteByte(' ')
		b.WriteString(s)
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(b.Bytes())
	return err
}

func addAttr(dst map[string]any, groups []string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	dst[key] = a.Value.Any()
}

// renderSummary renders the WAMP-domain fields callers care about most
// (session, realm, procedure, topic, reason, request_id) first, then the remainder
// sorted by key, as dim "key=value" pairs.
func renderSummary(color bool, fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}
	priority := []string{"session", "realm", "procedure", "topic", "reason", "request_id"}
	var parts []string
	seen := map[string]bool{}
	for _, k := range priority {
		if v, ok := fields[k]; ok {
			parts = append(parts, styleKV(color, k, v))
			seen[k] = true
		}
	}
	var rest []string
	for k := range fields {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		parts = append(parts, styleKV(color, k, fields[k]))
	}
	return strings.Join(parts, " ")
}

func styleKV(color bool, key string, value any) string {
	return fmt.Sprintf("%s=%s", applyDim(color, key), prettyValue(value))
}

func prettyValue(v any) string {
	switch x := v.(type) {
	case string:
		if strings.ContainsAny(x, " \t\"") {
			return strconv.Quote(x)
		}
		return x
	case error:
		return strconv.Quote(x.Error())
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

func levelTag(color bool, level slog.Level) string {
	var tag, code string
	switch {
	case level >= slog.LevelError:
		tag, code = "ERR", "31"
	case level >= slog.LevelWarn:
		tag, code = "WRN", "33"
	case level >= slog.LevelInfo:
		tag, code = "INF", "36"
	default:
		tag, code = "DBG", "90"
	}
	if !color {
		return tag
	}
	return "\x1b[" + code + "m" + tag + "\x1b[0m"
}

func applyDim(color bool, s string) string {
	if !color {
		return s
	}
	return "\x1b[2m" + s + "\x1b[0m"
}

func applyBold(color bool, s string) string {
	if !color {
		return s
	}
	return "\x1b[1m" + s + "\x1b[0m"
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func visualLen(s string) int {
	return len([]rune(stripANSI(s)))
}
