package server

import (
	"fmt"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

func (ss SolveSessionState) Name() string {
	switch ss {
	case SS_NEW:
		return "SS_NEW"
	case SS_SOLVING:
		return "SS_SOLVING"
	case SS_OVER:
		return "SS_OVER"
	case SS_ERR:
		return "SS_ERR"
	default:
		return fmt.Sprintf("n/a:%d", ss)
	}
}
