// Package teacherauth resolves the teacher identity attached to privileged
// requests.
//
// The school system's authorization model is identity presence: a request
// is privileged iff it names a teacher_username that matches an existing
// teacher record. No password or token is checked here. The middleware
// separates that check from the handlers: it verifies the record once and
// injects a Principal into the request context, so handlers receive an
// already-verified identity instead of re-deriving it from the raw query
// string.
package teacherauth

import (
	"context"
	"net/http"

	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/schoolhub/internal/app/system/apijson"
	"github.com/dalemusser/schoolhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Principal is the verified teacher identity injected into r.Context().
type Principal struct {
	ID          primitive.ObjectID
	Username    string
	DisplayName string
}

type ctxKey string

const principalKey ctxKey = "teacherPrincipal"

// CurrentTeacher returns the verified principal and a "found?" flag.
func CurrentTeacher(r *http.Request) (*Principal, bool) {
	p, ok := r.Context().Value(principalKey).(*Principal)
	return p, ok
}

func withPrincipal(r *http.Request, p *Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), principalKey, p))
}

// WithTestPrincipal injects a principal directly into the request context.
// Test-only helper for exercising handlers without the middleware.
func WithTestPrincipal(r *http.Request, p *Principal) *http.Request {
	return withPrincipal(r, p)
}

// Verifier checks teacher_username against the teachers collection.
type Verifier struct {
	Teachers *teacherstore.Store
	Log      *zap.Logger
}

// NewVerifier constructs a Verifier backed by the given database.
func NewVerifier(db *mongo.Database, logger *zap.Logger) *Verifier {
	return &Verifier{
		Teachers: teacherstore.New(db),
		Log:      logger,
	}
}

// RequireTeacher gates privileged routes. A missing teacher_username or one
// with no matching teacher record gets a 401; a store failure gets a 500.
// On success the verified principal is placed in the request context.
func (v *Verifier) RequireTeacher(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("teacher_username")
		if username == "" {
			apijson.Error(w, http.StatusUnauthorized, "Authentication required for this action")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		teacher, err := v.Teachers.GetByUsername(ctx, username)
		if err == mongo.ErrNoDocuments {
			apijson.Error(w, http.StatusUnauthorized, "Invalid teacher credentials")
			return
		}
		if err != nil {
			v.Log.Error("teacher lookup failed", zap.Error(err), zap.String("teacher_username", username))
			apijson.Error(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		next.ServeHTTP(w, withPrincipal(r, &Principal{
			ID:          teacher.ID,
			Username:    teacher.Username,
			DisplayName: teacher.DisplayName,
		}))
	})
}
