package ui

import (
	"encoding/json"
	"fmt"
)

// envelope is the self-describing serialized form of a Message: the wire
// tag plus the case's own fields. A consumer can reconstruct the exact
// union case from it without any schema negotiation.
type envelope struct {
	Type MessageKind     `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalMessage encodes a message into its tagged envelope form.
func MarshalMessage(m Message) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", m.Kind(), err)
	}
	return json.Marshal(envelope{Type: m.Kind(), Data: data})
}

// UnmarshalMessage decodes a tagged envelope back into the exact union
// case it was produced from. An unknown type tag is an error carrying
// the tag.
func UnmarshalMessage(raw []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decoding message envelope: %w", err)
	}

	switch env.Type {
	case KindStop:
		return decodePayload[Stop](env.Data)
	case KindServerStatus:
		return decodePayload[ServerStatus](env.Data)
	case KindCompilation:
		return decodePayload[Compilation](env.Data)
	case KindCompilationStdout:
		return decodePayload[CompilationStdout](env.Data)
	case KindCompilationStderr:
		return decodePayload[CompilationStderr](env.Data)
	case KindIOITask:
		return decodePayload[IOITask](env.Data)
	case KindIOIGeneration:
		return decodePayload[IOIGeneration](env.Data)
	case KindIOIGenerationStderr:
		return decodePayload[IOIGenerationStderr](env.Data)
	case KindIOIValidation:
		return decodePayload[IOIValidation](env.Data)
	case KindIOIValidationStderr:
		return decodePayload[IOIValidationStderr](env.Data)
	case KindIOISolution:
		return decodePayload[IOISolution](env.Data)
	case KindIOIEvaluation:
		return decodePayload[IOIEvaluation](env.Data)
	case KindIOIChecker:
		return decodePayload[IOIChecker](env.Data)
	case KindIOITestcaseScore:
		return decodePayload[IOITestcaseScore](env.Data)
	case KindIOISubtaskScore:
		return decodePayload[IOISubtaskScore](env.Data)
	case KindIOITaskScore:
		return decodePayload[IOITaskScore](env.Data)
	case KindIOIBooklet:
		return decodePayload[IOIBooklet](env.Data)
	case KindIOIBookletDependency:
		return decodePayload[IOIBookletDependency](env.Data)
	case KindTerryTask:
		return decodePayload[TerryTask](env.Data)
	case KindTerryGeneration:
		return decodePayload[TerryGeneration](env.Data)
	case KindTerryValidation:
		return decodePayload[TerryValidation](env.Data)
	case KindTerrySolution:
		return decodePayload[TerrySolution](env.Data)
	case KindTerryChecker:
		return decodePayload[TerryChecker](env.Data)
	case KindTerrySolutionOutcome:
		return decodePayload[TerrySolutionOutcome](env.Data)
	case KindWarning:
		return decodePayload[Warning](env.Data)
	default:
		return nil, fmt.Errorf("unknown message type %q", string(env.Type))
	}
}

// decodePayload unmarshals the envelope payload into the concrete case
// and hands it back as a value, so that consumers type switch on value
// types only.
func decodePayload[T Message](data json.RawMessage) (Message, error) {
	var m T
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", m.Kind(), err)
	}
	return m, nil
}
