package geofence

import "errors"

var ErrAreaNotFound = errors.New("geofenced area not found")
