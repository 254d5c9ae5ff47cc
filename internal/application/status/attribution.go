package status

// attributionUnknown es el valor final de la cadena de atribución.
const attributionUnknown = "Unknown"

// Identity identidad de sesión autenticada: nombre para mostrar y handle de
// login (email). Se pasa explícitamente; este paquete no lee estado ambiente.
type Identity struct {
	Name   string
	Handle string
}

// ResolveUpdatedBy decide el valor de updated_by con la cadena de prioridad:
// valor enviado por el cliente → nombre de la identidad → handle → "Unknown".
// Función pura sobre sus entradas.
func ResolveUpdatedBy(callerSupplied string, ident *Identity) string {
	if callerSupplied != "" {
		return callerSupplied
	}
	if ident != nil {
		if ident.Name != "" {
			return ident.Name
		}
		if ident.Handle != "" {
			return ident.Handle
		}
	}
	return attributionUnknown
}
