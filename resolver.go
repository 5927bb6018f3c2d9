package nilfacts

// stage is one overlay pass of the resolution pipeline: a pure function from
// signature to signature. Absence of a fact is always a no-op, never an
// error.
type stage func(sig Signature, proc ProcedureID) (Signature, error)

// buildStages assembles the enabled overlay stages. The order is fixed and
// significant: curated, hand-verified facts first, machine-inferred facts
// after. Because overlays are additive, later stages can extend but never
// override earlier ones.
func (e *Engine) buildStages() []stage {
	var stages []stage
	if e.tables != nil {
		stages = append(stages,
			e.curatedNullable,
			e.curatedPresent,
			e.curatedStrict,
		)
	}
	if e.store != nil || e.library != nil {
		stages = append(stages, e.inferredReturn)
	}
	if e.store != nil {
		stages = append(stages, e.inferredParameters)
	}
	return stages
}

// Resolve produces proc's effective signature by folding the enabled stages
// left-to-right over the base signature. base is not mutated.
func (e *Engine) Resolve(proc ProcedureID, base Signature) (Signature, error) {
	sig := base
	for _, st := range e.stages {
		var err error
		sig, err = st(sig, proc)
		if err != nil {
			return Signature{}, err
		}
	}
	return sig, nil
}

func (e *Engine) curatedNullable(sig Signature, proc ProcedureID) (Signature, error) {
	if m, ok := e.tables.Nullable(proc); ok {
		sig = sig.Overlay(m, Nullable)
	}
	return sig, nil
}

func (e *Engine) curatedPresent(sig Signature, proc ProcedureID) (Signature, error) {
	if m, ok := e.tables.Present(proc); ok {
		sig = sig.Overlay(m, Present)
	}
	return sig, nil
}

// curatedStrict marks the return type only; Strict has no per-parameter
// form.
func (e *Engine) curatedStrict(sig Signature, proc ProcedureID) (Signature, error) {
	if e.tables.Strict(proc) {
		sig = sig.WithReturn(Strict)
	}
	return sig, nil
}

func (e *Engine) inferredReturn(sig Signature, proc ProcedureID) (Signature, error) {
	if e.library != nil && e.library.ReturnsNullable(proc) {
		return sig.WithReturn(Nullable), nil
	}
	if e.store != nil {
		marked, err := e.store.ReturnMarked(proc)
		if err != nil {
			return Signature{}, err
		}
		if marked {
			sig = sig.WithReturn(Nullable)
		}
	}
	return sig, nil
}

func (e *Engine) inferredParameters(sig Signature, proc ProcedureID) (Signature, error) {
	flags, ok, err := e.store.ParametersMarked(proc)
	if err != nil {
		return Signature{}, err
	}
	if ok {
		sig = sig.Overlay(Mark{Params: flags}, Nullable)
	}
	return sig, nil
}
