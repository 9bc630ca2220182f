package convert

import (
	"github.com/edwinhayes/correctedros/ros"
)

var logger = ros.ModuleLogger("convert")
