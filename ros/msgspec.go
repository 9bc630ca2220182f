package ros

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var PrimitiveTypes = []string{
	"int8",
	"uint8", "int16", "uint16", "int32", "uint32", "int64", "uint64", "float32", "float64",
	"string",
	"bool",
	// deprecated:
	"char", "byte",
}

var BuiltinTypes = append([]string{TimeType, DurationType}, PrimitiveTypes...)

var resourceNameLegalCharsPattern = regexp.MustCompile(`^[A-Za-z][\w_\/]*$`)

func isBuiltinType(name string) bool {
	for _, t := range BuiltinTypes {
		if t == name {
			return true
		}
	}
	return false
}

func isLegalResourceBaseName(name string) bool {
	if strings.Contains(name, "//") {
		return false
	}
	return resourceNameLegalCharsPattern.MatchString(name)
}

func baseMsgType(t string) string {
	index := strings.Index(t, "[")
	if index < 0 {
		return t
	}
	return t[:index]
}

func splitType(t string) (string, string) {
	components := strings.Split(t, "/")
	if len(components) == 1 {
		return "", t
	}
	return components[0], components[1]
}

func parseType(msgType string) (pkg string, baseType string, isArray bool, arrayLen int, err error) {
	index := strings.Index(msgType, "[")
	if index < 0 {
		pkg, name := splitType(msgType)
		return pkg, name, false, 0, nil
	}
	if msgType[len(msgType)-1] != ']' {
		return "", msgType, false, 0, fmt.Errorf("missing ']'")
	}
	base := msgType[:index]
	rest := msgType[index:]
	pkg, name := splitType(base)
	if rest == "[]" {
		return pkg, name, true, -1, nil
	}
	value64, err := strconv.ParseInt(rest[1:len(rest)-1], 10, 32)
	if err != nil {
		return pkg, name, false, 0, err
	}
	return pkg, name, true, int(value64), nil
}

func isValidMsgType(t string) bool {
	if t != strings.TrimSpace(t) {
		return false
	}
	base := baseMsgType(t)
	if !isLegalResourceBaseName(base) {
		return false
	}

	x := t[len(base):]
	state := 0
	for _, c := range x {
		if state == 0 {
			if c != '[' {
				return false
			}
			state = 1
		} else if state == 1 {
			if c == ']' {
				state = 0
			} else if !unicode.IsDigit(c) {
				return false
			}
		}
	}
	return state == 0
}

// FieldSpec is one field line of a message definition.
type FieldSpec struct {
	Package   string
	Type      string
	Name      string
	IsBuiltin bool
	IsArray   bool
	ArrayLen  int
}

func (f FieldSpec) String() string {
	typeName := f.Type
	if f.Package != "" {
		typeName = f.Package + "/" + f.Type
	}
	if f.IsArray && f.ArrayLen > -1 {
		return fmt.Sprintf("%s[%d] %s", typeName, f.ArrayLen, f.Name)
	} else if f.IsArray {
		return fmt.Sprintf("%s[] %s", typeName, f.Name)
	}
	return fmt.Sprintf("%s %s", typeName, f.Name)
}

// ParseMsgSpec reads the fields of a message definition. Comments, blank
// lines and constant declarations are skipped.
func ParseMsgSpec(text string) ([]FieldSpec, error) {
	var fields []FieldSpec
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "=") {
			continue
		}
		items := strings.Fields(line)
		if len(items) != 2 {
			return nil, errors.Errorf("line %d: invalid field declaration %q", lineNo, line)
		}
		if !isValidMsgType(items[0]) {
			return nil, errors.Errorf("line %d: invalid field type %q", lineNo, items[0])
		}
		if !isLegalResourceBaseName(items[1]) {
			return nil, errors.Errorf("line %d: invalid field name %q", lineNo, items[1])
		}
		pkg, baseType, isArray, arrayLen, err := parseType(items[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		fields = append(fields, FieldSpec{
			Package:   pkg,
			Type:      baseType,
			Name:      items[1],
			IsBuiltin: isBuiltinType(baseType),
			IsArray:   isArray,
			ArrayLen:  arrayLen,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}
