package requests

type SubmitID struct {
	IDNumber string `json:"id_number"`
}

type SubmitCode struct {
	Code string `json:"code"`
}
