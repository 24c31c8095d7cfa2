package handlers

const (
	SessionCookieName = "session_id"
	CSRFFormField     = "csrf_token"
	CSRFHeader        = "X-CSRF-Token"

	ErrInvalidFormData     = "잘못된 요청입니다"
	ErrInvalidCSRFToken    = "보안 토큰이 올바르지 않습니다. 페이지를 새로고침해 주세요."
	ErrTooManyRequests     = "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요."
	ErrInternalServerError = "서버 오류가 발생했습니다"
)
