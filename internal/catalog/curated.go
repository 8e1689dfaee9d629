package catalog

// Entry is a hand-authored override record for a specific broker: bilingual
// instructions, contact fields, and predefined journey steps.
type Entry struct {
	Key            string
	InstructionsEN string
	InstructionsES string
	Emails         []string
	Phones         []string
	Links          []string
	JourneyEN      []string
	JourneyES      []string
}

// Curated returns the ordered override table for People Search brokers.
// Order is significant: the merger scans keys in this order and stops at
// the first substring match, so do not reorder existing entries.
func Curated() []Entry {
	return curatedEntries
}

var curatedEntries = []Entry{
	{
		Key:            "BeenVerified",
		InstructionsEN: "Search for your listing on BeenVerified's opt-out page, enter your name and state, and submit your opt-out request with a valid email. Confirm via the link sent to your email and wait for final confirmation.",
		InstructionsES: "Busque su registro en la página de exclusión de BeenVerified, ingrese su nombre y estado y envíe su solicitud de exclusión con un correo válido. Confirme a través del enlace enviado a su correo electrónico y espere la confirmación final.",
		Links:          []string{"https://www.beenverified.com/app/optout/search"},
		JourneyEN: []string{
			"Visit BeenVerified's opt-out page at https://www.beenverified.com/app/optout/search.",
			"Enter your name and state, then search for your listing.",
			"Select your listing and click \"Proceed to Opt Out.\"",
			"Enter your email address, complete the CAPTCHA and submit the request.",
			"Open the verification email and confirm your opt-out.",
			"Wait for final confirmation that your information has been removed.",
		},
		JourneyES: []string{
			"Visite la página de exclusión de BeenVerified en https://www.beenverified.com/app/optout/search.",
			"Ingrese su nombre y estado, luego busque su registro.",
			"Seleccione su registro y haga clic en \"Proceed to Opt Out\".",
			"Ingrese su correo electrónico, complete el CAPTCHA y envíe la solicitud.",
			"Abra el correo de verificación y confirme su exclusión.",
			"Espere la confirmación final de que su información ha sido eliminada.",
		},
	},
	{
		Key:            "CheckPeople",
		InstructionsEN: "Go to CheckPeople's opt-out page, complete the form with your details, search for your listing and click \"Opt Out.\" Enter your email to receive a confirmation link and complete the removal.",
		InstructionsES: "Vaya a la página de exclusión de CheckPeople, complete el formulario con sus datos, busque su registro y haga clic en \"Opt Out\". Ingrese su correo para recibir un enlace de confirmación y complete la eliminación.",
		Links:          []string{"https://www.checkpeople.com/opt-out"},
		JourneyEN: []string{
			"Go to https://www.checkpeople.com/opt-out.",
			"Fill out the opt-out form with your name and state; complete the CAPTCHA; click \"Search.\"",
			"Locate your listing and click \"Opt-Out.\"",
			"Enter your email address, complete the CAPTCHA and send the confirmation email.",
			"Open the confirmation link sent to your email and finish the removal request.",
			"Wait 5-7 days for confirmation that your information has been removed.",
		},
		JourneyES: []string{
			"Vaya a https://www.checkpeople.com/opt-out.",
			"Complete el formulario de exclusión con su nombre y estado; complete el CAPTCHA; haga clic en \"Search\".",
			"Ubique su registro y haga clic en \"Opt-Out\".",
			"Ingrese su correo electrónico, complete el CAPTCHA y envíe el correo de confirmación.",
			"Abra el enlace de confirmación enviado a su correo y finalice la solicitud de eliminación.",
			"Espere de 5 a 7 días para la confirmación de que su información ha sido eliminada.",
		},
	},
	{
		Key:            "ClustrMaps",
		InstructionsEN: "Visit the ClustrMaps opt-out page, search for your address, and follow the prompts to remove your listing.",
		InstructionsES: "Visite la página de exclusión de ClustrMaps, busque su dirección y siga las indicaciones para eliminar su registro.",
		Links:          []string{"https://clustrmaps.com/opt-out"},
		JourneyEN: []string{
			"Visit https://clustrmaps.com/opt-out.",
			"Search for your address or listing.",
			"Submit the removal request and follow any prompts.",
			"Check your email for confirmation.",
		},
		JourneyES: []string{
			"Visite https://clustrmaps.com/opt-out.",
			"Busque su dirección o registro.",
			"Envíe la solicitud de eliminación y siga las indicaciones.",
			"Revise su correo para confirmación.",
		},
	},
	{
		Key:            "Dataveria",
		InstructionsEN: "Find your profile on Dataveria, use the opt-out form to request removal, and if it fails, email support@federal-data.com with a screenshot of your listing.",
		InstructionsES: "Encuentre su perfil en Dataveria, use el formulario de exclusión para solicitar la eliminación y, si falla, envíe un correo a support@federal-data.com con una captura de pantalla de su registro.",
		Emails:         []string{"support@federal-data.com"},
		JourneyEN: []string{
			"Search for your profile on Dataveria.",
			"Copy your profile URL and submit it through the opt-out form.",
			"If the form doesn't work, email support@federal-data.com with your profile URL and a screenshot.",
			"Wait for confirmation of removal.",
		},
		JourneyES: []string{
			"Busque su perfil en Dataveria.",
			"Copie la URL de su perfil y envíela a través del formulario de exclusión.",
			"Si el formulario no funciona, envíe un correo a support@federal-data.com con la URL de su perfil y una captura de pantalla.",
			"Espere la confirmación de la eliminación.",
		},
	},
	{
		Key:            "Intelius",
		InstructionsEN: "Search for your listing on Intelius and submit an opt-out request via their form. If you have issues, call 888-445-2727 or email help@intelius.com for assistance.",
		InstructionsES: "Busque su registro en Intelius y envíe una solicitud de exclusión a través de su formulario. Si tiene problemas, llame al 888-445-2727 o envíe un correo a help@intelius.com para obtener ayuda.",
		Emails:         []string{"help@intelius.com"},
		Phones:         []string{"888-445-2727"},
		JourneyEN: []string{
			"Navigate to Intelius's opt-out page.",
			"Search for your listing using your name and state.",
			"Select your listing and submit the opt-out form with your email.",
			"Check your email for confirmation and complete the process.",
			"If you need assistance, call 888-445-2727 or email help@intelius.com.",
		},
		JourneyES: []string{
			"Vaya a la página de exclusión de Intelius.",
			"Busque su registro usando su nombre y estado.",
			"Seleccione su registro y envíe el formulario de exclusión con su correo.",
			"Revise su correo para confirmación y complete el proceso.",
			"Si necesita ayuda, llame al 888-445-2727 o envíe un correo a help@intelius.com.",
		},
	},
	{
		Key:            "MyLife",
		InstructionsEN: "Locate your profile on MyLife, then use their removal form (CCPA portal) with your profile link. If necessary, email privacy@mylife.com or call 888-704-1900.",
		InstructionsES: "Localice su perfil en MyLife y luego use su formulario de eliminación (portal CCPA) con el enlace de su perfil. Si es necesario, envíe un correo a privacy@mylife.com o llame al 888-704-1900.",
		Emails:         []string{"privacy@mylife.com"},
		Phones:         []string{"888-704-1900"},
		JourneyEN: []string{
			"Search for your profile on MyLife and copy the URL.",
			"Use MyLife's removal form (CCPA portal) to submit your information with the profile link.",
			"Check your email and follow any instructions to confirm your request.",
			"If not processed, email privacy@mylife.com or call 888-704-1900 with your profile link.",
		},
		JourneyES: []string{
			"Busque su perfil en MyLife y copie la URL.",
			"Use el formulario de eliminación de MyLife (portal CCPA) para enviar su información con el enlace de su perfil.",
			"Revise su correo y siga las instrucciones para confirmar su solicitud.",
			"Si no se procesa, envíe un correo a privacy@mylife.com o llame al 888-704-1900 con el enlace de su perfil.",
		},
	},
	{
		Key:            "Nuwber",
		InstructionsEN: "Use Nuwber's opt-out page to search for your record (filter by state), submit the removal form with your email and profile link, and confirm via the email. If it doesn't work, email support@nuwber.com.",
		InstructionsES: "Use la página de exclusión de Nuwber para buscar su registro (filtre por estado), envíe el formulario de eliminación con su correo y enlace de perfil, y confirme a través del correo. Si no funciona, envíe un correo a support@nuwber.com.",
		Emails:         []string{"support@nuwber.com"},
		JourneyEN: []string{
			"Go to Nuwber's removal page.",
			"Search for your record and use filters such as state to narrow the results.",
			"Copy your profile URL and submit the removal form with your email; complete the CAPTCHA.",
			"Check your email and confirm the removal.",
			"If it doesn't work, email support@nuwber.com with your details.",
		},
		JourneyES: []string{
			"Vaya a la página de eliminación de Nuwber.",
			"Busque su registro y use filtros como el estado para reducir los resultados.",
			"Copie la URL de su perfil y envíe el formulario de eliminación con su correo; complete el CAPTCHA.",
			"Revise su correo y confirme la eliminación.",
			"Si no funciona, envíe un correo a support@nuwber.com con sus datos.",
		},
	},
	{
		Key:            "PublicDataUSA",
		InstructionsEN: "Search for your information on PublicDataUSA, copy the page URL, and request removal via their \"Remove my info\" link or contact form.",
		InstructionsES: "Busque su información en PublicDataUSA, copie la URL de la página y solicite la eliminación a través de su enlace \"Remove my info\" o formulario de contacto.",
		JourneyEN: []string{
			"Visit PublicDataUSA and search for your information.",
			"Copy the URL of your listing.",
			"Click \"Remove my info\" or find the removal form and submit your details.",
			"Wait for confirmation.",
		},
		JourneyES: []string{
			"Visite PublicDataUSA y busque su información.",
			"Copie la URL de su registro.",
			"Haga clic en \"Remove my info\" o encuentre el formulario de eliminación y envíe sus datos.",
			"Espere la confirmación.",
		},
	},
	{
		Key:            "Radaris",
		InstructionsEN: "Find your profile on Radaris, click \"Control this profile\" and choose \"Remove info\", follow the prompts, and confirm by email. If needed, email privacy@radaris.com with your profile URL.",
		InstructionsES: "Encuentre su perfil en Radaris, haga clic en \"Control this profile\" y elija \"Remove info\", siga las instrucciones y confirme por correo electrónico. Si es necesario, envíe un correo a privacy@radaris.com con la URL de su perfil.",
		Emails:         []string{"privacy@radaris.com"},
		JourneyEN: []string{
			"Search for your profile on Radaris and open it.",
			"Click \"Control this profile\" then choose \"Remove info\".",
			"Fill out the removal form with your email and follow the prompts.",
			"Confirm the request via the email you receive.",
			"If issues persist, email privacy@radaris.com with your profile URL.",
		},
		JourneyES: []string{
			"Busque su perfil en Radaris y ábralo.",
			"Haga clic en \"Control this profile\" y luego elija \"Remove info\".",
			"Complete el formulario de eliminación con su correo y siga las instrucciones.",
			"Confirme la solicitud mediante el correo que reciba.",
			"Si persisten problemas, envíe un correo a privacy@radaris.com con la URL de su perfil.",
		},
	},
	{
		Key:            "SmartBackgroundChecks",
		InstructionsEN: "Search for your listing on SmartBackgroundChecks, select it, and use the removal option. Confirm via the email sent.",
		InstructionsES: "Busque su registro en SmartBackgroundChecks, selecciónelo y use la opción de eliminación. Confirme a través del correo enviado.",
		JourneyEN: []string{
			"Go to SmartBackgroundChecks and search for your information.",
			"Select your listing and click the opt-out option.",
			"Provide your email and submit.",
			"Confirm the removal via the email you receive.",
		},
		JourneyES: []string{
			"Vaya a SmartBackgroundChecks y busque su información.",
			"Seleccione su registro y haga clic en la opción de exclusión.",
			"Proporcione su correo y envíe.",
			"Confirme la eliminación a través del correo que reciba.",
		},
	},
	{
		Key:            "Spokeo",
		InstructionsEN: "Search for your listing on Spokeo, copy the profile URL, then go to Spokeo's opt-out form, paste the URL, enter your email and complete the CAPTCHA. Confirm via the link in the email; note that paid accounts may still access your info.",
		InstructionsES: "Busque su registro en Spokeo, copie la URL del perfil, luego vaya al formulario de exclusión de Spokeo, pegue la URL, ingrese su correo y complete el CAPTCHA. Confirme a través del enlace en el correo; tenga en cuenta que las cuentas de pago aún pueden acceder a su información.",
		Links:          []string{"https://www.spokeo.com/opt_out"},
		JourneyEN: []string{
			"Search for your listing on Spokeo and copy the profile URL.",
			"Go to https://www.spokeo.com/opt_out.",
			"Paste the profile URL, enter your email and complete the CAPTCHA.",
			"Check your email and click the confirmation link.",
			"Be aware that paid subscribers may still access your information.",
		},
		JourneyES: []string{
			"Busque su registro en Spokeo y copie la URL del perfil.",
			"Vaya a https://www.spokeo.com/opt_out.",
			"Pegue la URL del perfil, ingrese su correo y complete el CAPTCHA.",
			"Revise su correo y haga clic en el enlace de confirmación.",
			"Tenga en cuenta que los suscriptores de pago pueden seguir accediendo a su información.",
		},
	},
	{
		Key:            "That’s Them",
		InstructionsEN: "Search for your listing on That's Them and use the removal link (not the Spokeo link) to submit your request.",
		InstructionsES: "Busque su registro en That's Them y use el enlace de eliminación (no el enlace de Spokeo) para enviar su solicitud.",
		JourneyEN: []string{
			"Search for your listing on That's Them.",
			"Click the removal link (avoid the Spokeo link) to submit your request.",
			"Follow any prompts and confirm via email if required.",
		},
		JourneyES: []string{
			"Busque su registro en That's Them.",
			"Haga clic en el enlace de eliminación (evite el enlace de Spokeo) para enviar su solicitud.",
			"Siga las indicaciones y confirme por correo si es necesario.",
		},
	},
	{
		Key:            "Whitepages",
		InstructionsEN: "Find your listing on WhitePages, use the removal or suppression request and follow the phone verification steps; you may have to call to confirm. Check 411.com to ensure your record is also removed.",
		InstructionsES: "Encuentre su registro en WhitePages, use la solicitud de supresión y siga los pasos de verificación telefónica; es posible que deba llamar para confirmar. Verifique 411.com para asegurarse de que su registro también se elimine.",
		Phones:         []string{"800-592-7153", "888-368-4484"},
		JourneyEN: []string{
			"Go to WhitePages and search for your listing; copy the listing URL.",
			"Click the removal or suppression request link and follow the instructions.",
			"You may need to verify your identity via a phone call; be prepared to provide your phone number.",
			"Check 411.com for your information and request removal there if needed.",
		},
		JourneyES: []string{
			"Vaya a WhitePages y busque su registro; copie la URL del registro.",
			"Haga clic en el enlace de eliminación o supresión y siga las instrucciones.",
			"Es posible que deba verificar su identidad mediante una llamada telefónica; esté preparado para proporcionar su número.",
			"Verifique 411.com para ver su información y solicite su eliminación allí si es necesario.",
		},
	},
}
