package cmake

import "strings"

func write(sb *strings.Builder, s ...string) {
	for _, str := range s {
		sb.WriteString(str)
	}
}

func writeln(sb *strings.Builder, s ...string) {
	write(sb, s...)
	sb.WriteByte('\n')
}

// writeList writes items separated by single spaces, each passed through render
func writeList(sb *strings.Builder, items []string, render func(string) string) {
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(render(item))
	}
}
