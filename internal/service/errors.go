package service

import "errors"

// ErrDeviceIDRequired 缺少设备标识
var ErrDeviceIDRequired = errors.New("device id required")
