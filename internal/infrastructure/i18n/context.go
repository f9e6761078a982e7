package i18n

// Chaves usadas para propagar o idioma e o serviço i18n pelo contexto
// da requisição. Vivem aqui para que tanto o middleware quanto os DTOs
// possam referenciá-las sem depender um do outro.
const (
	// LanguageContextKey é a chave do idioma detectado
	LanguageContextKey = "language"
	// ServiceContextKey é a chave do serviço i18n
	ServiceContextKey = "i18n_service"
)
