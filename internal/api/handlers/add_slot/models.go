package add_slot

// AddSlotRequest HTTP модель запроса на добавление места
type AddSlotRequest struct {
	SlotNumber int `json:"slotNumber"`
}
