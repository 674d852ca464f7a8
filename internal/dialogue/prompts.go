package dialogue

import (
	"fmt"

	"reposicion-assistant/internal/catalog"
)

// #region prompts
// User-facing prompts, one per dialogue situation. Kept in one place so the
// wording stays consistent between first prompts and re-prompts.
const (
	msgGreeting = "Hola, soy tu Asistente de Reposición Virtual.\n" +
		"Puedes reponer un artículo directo o un proceso completo.\n" +
		"Escribe 'Sí' para comenzar o 'No' para salir."
	msgAskType          = "¿Reponer un directo o un proceso?\n(Escribe 'directo' o 'proceso')"
	msgAskTypeNext      = "¿Siguiente reposición será directo o proceso?\n(Escribe 'directo' o 'proceso')"
	msgEnterDirectCode  = "Ingrese el código del directo (Ej: A123):"
	msgEnterProcessCode = "Ingrese el código de proceso (Ej: P001) o un código de producto relacionado:"
	msgRetryDirectCode  = "Entendido. Ingrese el código del directo correcto:"
	msgRetryProcessCode = "Entendido. Ingrese el código de proceso/producto correcto:"
	msgRetryCircuitCode = "Entendido. Ingrese el código general específico correcto:"
	msgAskQuantity      = "¿Cuántas piezas desea reponer?"
	msgAskCircuitQty    = "¿Cuántas piezas para este circuito?"
	msgAskGroupQty      = "Cantidad para cada código general del grupo:"
	msgGroupOrSpecific  = "¿Reponer el grupo completo o un circuito específico?\n(Escriba 'grupo' o 'especifico')"
	msgEnterCircuit     = "Ingrese código del circuito específico (Codigo General):"
	msgAskAnother       = "¿Realizar otra reposición? (Sí para continuar / No para finalizar e imprimir si desea)"
	msgAskPrint         = "¿Desea imprimir las reposiciones acumuladas? (Sí/No)"
	msgYesNo            = "Responda 'Sí' o 'No'."
	msgDirectOrProcess  = "Responda 'directo' o 'proceso'."
	msgGroupOrSpecErr   = "Responda 'Grupo' o 'Especifico'."
	msgInvalidQuantity  = "Cantidad inválida. Ingrese un número entero positivo."
	msgFarewell         = "Entendido. ¡Hasta luego!"
	msgNothingToPrint   = "No hay reposiciones para imprimir. ¡Hasta luego!"
	msgNoPrint          = "No se imprimirán las reposiciones. ¡Gracias!"
	msgPrinting         = "Generando reporte de reposiciones acumuladas..."
	msgGroupLost        = "Error: No se encontró información del proceso representante. Reiniciando."
	msgReloaded         = "Datos recargados. Las coincidencias previas pueden diferir con los nuevos datos; " +
		"puede continuar la reposición actual o iniciar una nueva."
)

// #endregion prompts

// #region dynamic-prompts

func msgDirectFound(r catalog.Record) string {
	return fmt.Sprintf(
		"Código encontrado: %s (General: %s).\nProceso: %s, Maq: %s\n"+
			"Tipo: %s, Tamaño: %s, Color: %s, Largo: %s.\n"+
			"¿Es este el artículo correcto? (Sí/No)",
		orNA(r.NumeroSencillo), orNA(r.Codigos), orNA(r.Proceso), orNA(r.Maq),
		orNA(r.Type), orNA(r.Size), orNA(r.Color), orNA(r.CutLength),
	)
}

func msgDirectMiss(code string) string {
	return fmt.Sprintf("Código '%s' no encontrado o filtrado. Verifique e intente de nuevo.", catalog.NormalizeTerm(code))
}

func msgProcessFound(process, representative string, first catalog.Record) string {
	return fmt.Sprintf(
		"Proceso identificado: %s.\nNúmero de Parte Representante seleccionado: %s.\n"+
			"(General: %s, Maq: %s)\n¿Es este el proceso/representante que desea utilizar? (Sí/No)",
		process, representative, orNA(first.Codigos), orNA(first.Maq),
	)
}

func msgProcessMiss(code string) string {
	return fmt.Sprintf("Proceso/código '%s' no encontrado o sin items válidos. Verifique.", catalog.NormalizeTerm(code))
}

func msgCircuitFound(r catalog.Record) string {
	return fmt.Sprintf(
		"Circuito/Código General: %s\n(Del Numero Sencillo: %s)\n¿Correcto? (Sí/No)",
		orNA(r.Codigos), orNA(r.NumeroSencillo),
	)
}

func msgCircuitMiss(code string) string {
	return fmt.Sprintf("Código General '%s' no encontrado para el representante actual. Intente de nuevo.", catalog.NormalizeTerm(code))
}

func msgAdded(label string, quantity int) string {
	return fmt.Sprintf("Reposición para '%s' (Cantidad: %d) añadida a la lista.", label, quantity)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// #endregion dynamic-prompts
