package client

import "errors"

var ErrNilConfig = errors.New("client config is nil")

const sessionExpiredNotice = "Your session has expired, please log in again"
