package constvars

const (
	MIMETextHTMLCharsetUTF8 = "text/html; charset=utf-8"
	MIMEApplicationJSON     = "application/json"
	MIMEOctetStream         = "application/octet-stream"
	MIMEMultipartForm       = "multipart/form-data"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusGone                = 410
	StatusRequestTooLarge     = 413
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType         = "Content-Type"
	HeaderContentLength       = "Content-Length"
	HeaderContentDisposition  = "Content-Disposition"
	HeaderXContentTypeOptions = "X-Content-Type-Options"
	HeaderXRequestID          = "X-Request-ID"
	HeaderAuthorization       = "Authorization"
)

const (
	NoSniff                  = "nosniff"
	DispositionInline        = "inline"
	DispositionAttachment    = "attachment"
	MinioResponseDisposition = "response-content-disposition"
	MinioErrorCodeNoSuchKey  = "NoSuchKey"
	MIMEApplicationPDF       = "application/pdf"
	MIMEImagePrefix          = "image/"
	MIMEImageSVG             = "image/svg+xml"
	GCSPublicHost            = "storage.googleapis.com"
)
