package rosbridge

import (
	"github.com/edwinhayes/correctedros/ros"
)

var logger = ros.ModuleLogger("rosbridge")
