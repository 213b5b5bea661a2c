package debitnote

import "DebitNoteEngine/internal/serviceiface"

type DebitNoteService struct {
	config map[string]interface{}
}

func NewDebitNoteService(cfg map[string]interface{}) serviceiface.Service {
	return &DebitNoteService{config: cfg}
}

func (s *DebitNoteService) Name() string {
	return "debitnote"
}

func (s *DebitNoteService) Start() error {
	go StartDebitNoteService(s.config)
	return nil
}

func (s *DebitNoteService) Stop() error {
	return nil
}
