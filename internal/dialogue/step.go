package dialogue

// #region step
// Step identifies a node of the dialogue. Each step consumes exactly one
// normalized input line; invalid input self-loops on the same step.
type Step int

const (
	StepAskReposition Step = iota
	StepAskType
	StepGetDirectCode
	StepConfirmDirectItem
	StepGetQuantityDirect
	StepGetProcessCode
	StepConfirmProcessItems
	StepAskGroupOrSpecific
	StepAskSpecificCircuitCode
	StepConfirmSpecificItem
	StepGetTotalGroupQuantity
	StepGetSingleCircuitQuantity
	StepAskAnotherReposition
	StepAskPrint
	StepDone
)

var stepNames = map[Step]string{
	StepAskReposition:            "ask_reposition",
	StepAskType:                  "ask_type",
	StepGetDirectCode:            "get_direct_code",
	StepConfirmDirectItem:        "confirm_direct_item",
	StepGetQuantityDirect:        "get_quantity_direct",
	StepGetProcessCode:           "get_process_code",
	StepConfirmProcessItems:      "confirm_process_items",
	StepAskGroupOrSpecific:       "ask_group_or_specific",
	StepAskSpecificCircuitCode:   "ask_for_specific_process_code",
	StepConfirmSpecificItem:      "confirm_specific_process_item",
	StepGetTotalGroupQuantity:    "get_total_group_quantity",
	StepGetSingleCircuitQuantity: "get_single_circuit_quantity",
	StepAskAnotherReposition:     "ask_another_reposition",
	StepAskPrint:                 "ask_print",
	StepDone:                     "done",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// #endregion step
