package console

// Console copy. Lines that embed names are format strings.
const (
	MsgRegisterTitle = "\n--- Registro ---"
	MsgLoginTitle    = "\n--- Inicio de Sesión ---"
	MsgUserMenu      = "--- MENÚ USUARIO ---"
	MsgAdminMenu     = "--- MENÚ ADMINISTRADOR ---"

	MsgWelcome      = "\n🎉 Bienvenido/a %s a %s, ya te encuentras registrado 🎉\n"
	MsgGreeting     = "\n🎉 ¡Hola %s, ya iniciaste Sesión!  🎉\n"
	MsgUserFarewell = "👋 Gracias por tu visita."
	MsgFarewell     = "🚗 ¡Gracias por visitar AutoPlus! 🚗"

	MsgInvalidOption      = "⚠️ Opción inválida."
	MsgInvalidPassword    = "❌ Contraseña inválida."
	MsgEmailTaken         = "❌ Email ya registrado."
	MsgInvalidCredentials = "❌ Credenciales inválidas."
	MsgRoleChanged        = "✅ Rol cambiado."
	MsgInvalidRole        = "❌ Rol inválido."
	MsgUserNotFound       = "❌ Usuario no encontrado."
	MsgSelfDeletion       = "❌ No puedes eliminarte a ti mismo."
	MsgUserDeleted        = "✅ Usuario eliminado."
	MsgForbidden          = "⛔ Acceso denegado."
	MsgSessionExpired     = "⏰ Tu sesión expiró, inicia sesión nuevamente."
	MsgTooManyAttempts    = "⏳ Demasiados intentos, espera un momento."
	MsgUnexpected         = "❌ Ocurrió un error inesperado."

	PromptOption    = "Opción: "
	PromptName      = "Nombre Completo: "
	PromptEmail     = "Email: "
	PromptPassword  = "Contraseña: "
	PromptUserEmail = "Email del usuario: "
	PromptNewRole   = "Nuevo rol (Administrador/Usuario): "
	PromptDelete    = "Email a eliminar: "
)

// Banner is the title of the signed-out menu.
func Banner(dealership string) string {
	return "=== " + dealership + " ==="
}
