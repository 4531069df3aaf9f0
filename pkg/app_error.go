package pkg

// AppError is the error shape returned by HTTP handlers.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Code + ": " + e.Message
	}
	return e.Code + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError uses the wrapped error's message when present.
func (e *AppError) ToHTTPError() HTTPError {
	if e.Err != nil {
		return HTTPError{Error: e.Err.Error(), Code: e.Code}
	}
	return HTTPError{Error: e.Message, Code: e.Code}
}
