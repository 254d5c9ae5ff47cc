package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Calidad-api/internal/application/status"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la cadena de atribución updated_by:
// valor del cliente → nombre de identidad → handle → "Unknown".
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveUpdatedBy_ValorDelClienteTienePrioridad(t *testing.T) {
	ident := &status.Identity{Name: "María Gómez", Handle: "maria@planta.com"}
	got := status.ResolveUpdatedBy("Inspector Turno B", ident)
	assert.Equal(t, "Inspector Turno B", got)
}

func TestResolveUpdatedBy_CaeAlNombreDeIdentidad(t *testing.T) {
	ident := &status.Identity{Name: "María Gómez", Handle: "maria@planta.com"}
	got := status.ResolveUpdatedBy("", ident)
	assert.Equal(t, "María Gómez", got)
}

func TestResolveUpdatedBy_CaeAlHandleSinNombre(t *testing.T) {
	ident := &status.Identity{Name: "", Handle: "maria@planta.com"}
	got := status.ResolveUpdatedBy("", ident)
	assert.Equal(t, "maria@planta.com", got)
}

func TestResolveUpdatedBy_SinNadaDevuelveUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", status.ResolveUpdatedBy("", nil))
	assert.Equal(t, "Unknown", status.ResolveUpdatedBy("", &status.Identity{}))
}
