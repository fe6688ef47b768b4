package errors

import "fmt"

var (
	// JWT et jetons
	ErrInvalidSigningMethod = fmt.Errorf("méthode de signature du jeton invalide")
	ErrInvalidToken         = fmt.Errorf("jeton invalide")
	ErrTokenExpired         = fmt.Errorf("session expirée, veuillez vous reconnecter")
	ErrTokenNotYetValid     = fmt.Errorf("jeton pas encore actif")
	ErrTokenIsNotRefresh    = fmt.Errorf("le jeton n'est pas un jeton de rafraîchissement")
	ErrTokenIsNotAccess     = fmt.Errorf("le jeton n'est pas un jeton d'accès")

	// Autorisation
	ErrEmptyAuthHeader    = fmt.Errorf("en-tête d'autorisation manquant")
	ErrInvalidAuthHeader  = fmt.Errorf("format d'en-tête d'autorisation invalide")
	ErrInvalidCredentials = fmt.Errorf("identifiants invalides")
	ErrUnauthorized       = fmt.Errorf("non autorisé")
	ErrForbidden          = fmt.Errorf("accès refusé")

	// Contexte
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID introuvable dans le contexte de la requête")

	// Générales
	ErrNotFound   = fmt.Errorf("enregistrement introuvable")
	ErrBadRequest = fmt.Errorf("requête invalide")
	ErrConflict   = fmt.Errorf("conflit avec un enregistrement existant")
)

// HttpError porte le statut HTTP et le message destiné à l'utilisateur.
// Err est la cause technique (journalisée, jamais sérialisée), Details part
// dans le corps de la réponse quand il est présent.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
