package errors

// 通用错误码
const (
	ErrInternalServer = "ERR_INTERNAL_SERVER"
	ErrInvalidParam   = "ERR_INVALID_PARAM"
	ErrEmptyID        = "ERR_EMPTY_ID"
	ErrTooManyRequest = "ERR_TOO_MANY_REQUESTS"
)

// Pack 相关错误码
const (
	ErrPackNotFound          = "ERR_PACK_NOT_FOUND"
	ErrPackUpdateHasServers  = "exceptions.packs.update_has_servers"
	ErrPackDeleteHasServers  = "exceptions.packs.delete_has_servers"
	ErrServiceOptionNotFound = "ERR_SERVICE_OPTION_NOT_FOUND"
)
