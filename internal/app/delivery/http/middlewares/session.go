package middlewares

import (
	"context"
	"net/http"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Session resolves the browser's verification session from the signed cookie.
// A request without a valid cookie gets a fresh session id and a new cookie.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		jwtConfig := m.InternalConfig.JWT

		var sessionID string
		if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil {
			sessionID, err = utils.ParseSessionJWT(cookie.Value, jwtConfig.Secret)
			if err != nil {
				m.Log.Debug("Discarding invalid session cookie",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
		}

		if sessionID == "" {
			sessionID = utils.GenerateSessionID()
			token, err := utils.GenerateSessionJWT(sessionID, jwtConfig.Secret, jwtConfig.ExpTimeInHour)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionTokenInvalid(err))
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     constvars.SessionCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   jwtConfig.ExpTimeInHour * 3600,
				HttpOnly: true,
				Secure:   m.InternalConfig.App.Env == "production",
				SameSite: http.SameSiteLaxMode,
			})
			m.Log.Debug("New verification session issued",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
			)
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
