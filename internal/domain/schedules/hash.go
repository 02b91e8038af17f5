package schedules

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Dominio del hash de validación de grupo. El sufijo de versión permite
// migrar el algoritmo sin colisionar con hashes viejos.
const groupHashDomain = "medreminder/group/v1"

// ComputeGroupHash calcula el fingerprint canónico de la identidad
// compartida del grupo: (id, nombre, fecha de inicio, frecuencia, tamaño).
// Determinístico: todos los miembros de un grupo sano producen el mismo
// valor. No es criptográfico en intención, solo igualdad confiable.
func ComputeGroupHash(g GroupAssignment) string {
	fields := []string{
		g.GroupID,
		g.GroupName,
		canonicalDate(g.GroupStartDate),
		string(g.GroupFrequency),
		strconv.Itoa(g.GroupSize),
	}

	h := sha256.New()
	h.Write([]byte(groupHashDomain))
	h.Write([]byte{0x00}) // separador dominio/datos
	h.Write([]byte(strings.Join(fields, "\x1f")))
	return hex.EncodeToString(h.Sum(nil))
}

// canonicalDate codifica solo la fecha de calendario: dos miembros con la
// misma fecha en zonas distintas deben hashear igual.
func canonicalDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return normalizeDate(t).Format("2006-01-02")
}
