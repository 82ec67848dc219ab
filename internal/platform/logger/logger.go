package logger

import (
	"encoding/json"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var levelNames = [...]string{
	Debug: "debug",
	Info:  "info",
	Warn:  "warn",
	Error: "error",
}

// ParseLevel acepta debug|info|warn(ing)|error; cualquier otra cosa es Info.
func ParseLevel(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return Warn
	}
	for lvl, name := range levelNames {
		if name == s {
			return Level(lvl)
		}
	}
	return Info
}

func (l Level) String() string {
	if l < Debug || int(l) >= len(levelNames) {
		return levelNames[Info]
	}
	return levelNames[l]
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Out por defecto es stdout; en tests se pasa un buffer.
	Out io.Writer
}

// StdLogger escribe una línea por entrada. Los hijos creados con With
// comparten writer y mutex, así las líneas no se mezclan.
type StdLogger struct {
	mu     *sync.Mutex
	out    io.Writer
	min    Level
	encode func(map[string]any) []byte
	fields map[string]any
	clock  func() time.Time
}

func New(opts Options) Logger {
	l := &StdLogger{
		mu:     &sync.Mutex{},
		out:    opts.Out,
		min:    opts.Level,
		encode: encodeText,
		fields: map[string]any{},
		clock:  time.Now,
	}
	if l.out == nil {
		l.out = os.Stdout
	}
	if opts.Format == FormatJSON {
		l.encode = encodeJSON
	}
	if app := strings.TrimSpace(opts.App); app != "" {
		l.fields["app"] = app
	}
	return l
}

func (l *StdLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}

	child := *l
	child.fields = mergeFields(make(map[string]any, len(l.fields)+len(fields)), l.fields, fields)
	return &child
}

func (l *StdLogger) Debug(msg string, fields map[string]any) { l.write(Debug, msg, fields) }
func (l *StdLogger) Info(msg string, fields map[string]any)  { l.write(Info, msg, fields) }
func (l *StdLogger) Warn(msg string, fields map[string]any)  { l.write(Warn, msg, fields) }
func (l *StdLogger) Error(msg string, fields map[string]any) { l.write(Error, msg, fields) }

func (l *StdLogger) write(lvl Level, msg string, fields map[string]any) {
	if lvl < l.min {
		return
	}

	entry := mergeFields(make(map[string]any, len(l.fields)+len(fields)+3), l.fields, fields)
	entry["ts"] = l.clock().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	line := append(l.encode(entry), '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(line)
}

// mergeFields copia cada src en dst en orden; las keys vacías se ignoran.
func mergeFields(dst map[string]any, srcs ...map[string]any) map[string]any {
	for _, src := range srcs {
		for k, v := range src {
			if strings.TrimSpace(k) == "" {
				continue
			}
			dst[k] = v
		}
	}
	return dst
}

func encodeJSON(entry map[string]any) []byte {
	b, err := json.Marshal(entry)
	if err != nil {
		// un campo no serializable no debe perder la línea
		b, _ = json.Marshal(map[string]any{
			"ts":    entry["ts"],
			"level": entry["level"],
			"msg":   entry["msg"],
			"error": "log fields: " + err.Error(),
		})
	}
	return b
}

// encodeText: key=value con keys ordenadas; valores con espacios van entre comillas.
func encodeText(entry map[string]any) []byte {
	keys := make([]string, 0, len(entry))
	for k := range entry {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b []byte
	for i, k := range keys {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, k...)
		b = append(b, '=')
		b = appendTextValue(b, entry[k])
	}
	return b
}

func appendTextValue(b []byte, v any) []byte {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case error:
		s = x.Error()
	case int:
		return strconv.AppendInt(b, int64(x), 10)
	case int64:
		return strconv.AppendInt(b, x, 10)
	case bool:
		return strconv.AppendBool(b, x)
	default:
		enc, err := json.Marshal(x)
		if err != nil {
			return append(b, strconv.Quote(err.Error())...)
		}
		s = string(enc)
	}

	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.AppendQuote(b, s)
	}
	return append(b, s...)
}

type nopLogger struct{}

// Nop descarta todo; útil en tests y cuando no hay logger configurado.
func Nop() Logger { return nopLogger{} }

func (n nopLogger) With(map[string]any) Logger { return n }
func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
