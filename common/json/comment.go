package json

import (
	"bytes"
)

// StripComments removes "//", "#" and "/* */" comments found outside quoted
// strings. Newlines inside comments are kept, so syntax errors still report
// the row of the original content.
func StripComments(content []byte) []byte {
	output := make([]byte, 0, len(content))
	for index := 0; index < len(content); index++ {
		c := content[index]
		switch c {
		case '"', '\'':
			end := quotedEnd(content, index)
			output = append(output, content[index:end]...)
			index = end - 1
		case '\\':
			end := min(index+2, len(content))
			output = append(output, content[index:end]...)
			index = end - 1
		case '#':
			index = lineEnd(content, index) - 1
		case '/':
			if index+1 < len(content) {
				switch content[index+1] {
				case '/':
					index = lineEnd(content, index) - 1
					continue
				case '*':
					comment := content[index+2:]
					end := bytes.Index(comment, []byte("*/"))
					if end == -1 {
						index = len(content)
					} else {
						comment = comment[:end]
						index += end + 3
					}
					output = append(output, bytes.Repeat([]byte{'\n'}, bytes.Count(comment, []byte{'\n'}))...)
					continue
				}
			}
			output = append(output, c)
		default:
			output = append(output, c)
		}
	}
	return output
}

func lineEnd(content []byte, start int) int {
	if end := bytes.IndexByte(content[start:], '\n'); end != -1 {
		return start + end
	}
	return len(content)
}

func quotedEnd(content []byte, start int) int {
	quote := content[start]
	for index := start + 1; index < len(content); index++ {
		switch content[index] {
		case '\\':
			index++
		case quote:
			return index + 1
		}
	}
	return len(content)
}
