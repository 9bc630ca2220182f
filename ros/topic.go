package ros

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	Sep       = "/"
	GlobalNS  = "/"
	PrivateNS = "~"
)

var topicNamePattern = regexp.MustCompile(`^/?([a-zA-Z]\w*/)*[a-zA-Z]\w*/?$`)

func isValidTopicName(name string) bool {
	return topicNamePattern.MatchString(name)
}

func isGlobalName(name string) bool {
	return len(name) > 0 && name[0:1] == GlobalNS
}

func isPrivateName(name string) bool {
	return len(name) > 0 && name[0:1] == PrivateNS
}

// Remove sequential and trailing separators
func canonicalizeName(name string) string {
	if name == GlobalNS {
		return name
	}
	components := []string{}
	for _, word := range strings.Split(name, Sep) {
		if len(word) > 0 {
			components = append(components, word)
		}
	}
	if isGlobalName(name) {
		return GlobalNS + strings.Join(components, Sep)
	}
	return strings.Join(components, Sep)
}

// ResolveTopic returns the global form of a topic name. Relative names are
// placed under namespace; private (~) names need a node and are rejected.
func ResolveTopic(name string, namespace string) (string, error) {
	if name == "" {
		return "", errors.New("empty topic name")
	}
	if isPrivateName(name) {
		return "", errors.Errorf("private topic name %q cannot be resolved without a node", name)
	}
	if !isValidTopicName(name) {
		return "", errors.Errorf("invalid topic name %q", name)
	}
	if isGlobalName(name) {
		return canonicalizeName(name), nil
	}
	if namespace == "" || namespace == GlobalNS {
		return GlobalNS + canonicalizeName(name), nil
	}
	if !isGlobalName(namespace) || !isValidTopicName(namespace) {
		return "", errors.Errorf("invalid namespace %q", namespace)
	}
	return canonicalizeName(namespace) + Sep + canonicalizeName(name), nil
}
