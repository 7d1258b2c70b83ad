package zoo

type NotFoundError struct {
	msg string
}

func NewNotFoundError(msg string) NotFoundError {
	return NotFoundError{msg: msg}
}

func (nfe NotFoundError) Error() string {
	return nfe.msg
}

type InvalidRequestError struct {
	msg string
}

func NewInvalidRequestError(msg string) InvalidRequestError {
	return InvalidRequestError{msg: msg}
}

func (ire InvalidRequestError) Error() string {
	return ire.msg
}
